/*
Package etc2 decodes ETC1, ETC2 RGB and ETC2A8 (ETC2 RGBA8 with EAC alpha)
texture blocks into RGBA8888 pixels.

Each 4x4 block carries an 8-byte color codeword, optionally preceded by an
8-byte alpha codeword. The color codeword resolves to one of five modes
(Individual, Differential, T, H, Planar), which are selected by overflow of
the differential color fields rather than by a stored tag.

The core entry points DecodeETC2A8 and DecodeETC2 trust their caller and
never fail. Decode and DecodeWithOptions validate sizes, allocate the image
and can split the block grid across workers. The package also reads PKM
files, inflates LZ4/Zstandard compressed payloads and re-exports decoded
textures as DDS.
*/
package etc2
